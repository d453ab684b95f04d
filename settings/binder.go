package settings

import (
	"github.com/automoto/doomerang-settings/tags"
	"github.com/yohamta/donburi"
)

// bindOwner resolves the owner of p and records the functions its class exposes.
// An owner that does not exist yet puts the setting on the deferred list.
func (m *Menu) bindOwner(p *Primary) (any, bool) {
	if !p.Owner.IsValid() {
		return nil, false
	}

	if p.ownerFunc == nil {
		fn, ok := p.Owner.Resolve(m.classes)
		if !ok {
			logf("Warning: owner function %s of %s not found", p.Owner, p.Tag)
			return nil, false
		}
		f, ok := bindAs[func(donburi.World) any](fn, nil, SigOwner)
		if !ok {
			logf("Warning: owner function %s of %s is %s, expected %s", p.Owner, p.Tag, fn.Signature(), SigOwner)
			return nil, false
		}
		p.ownerFunc = f
	}

	owner := p.SettingOwner(m.world)
	if owner == nil {
		if m.deferred.Add(p.Tag) {
			logf("owner of %s not available yet, binding deferred", p.Tag)
		}
		return nil, false
	}

	cls, ok := m.classes.ClassOf(owner)
	if !ok {
		logf("Warning: owner %T of %s has no registered class", owner, p.Tag)
		return nil, false
	}
	p.ownerFunctions = cls.FunctionNames()
	return owner, true
}

// bindSetting binds the owner of s and wires its value functions.
func (m *Menu) bindSetting(s *Setting) bool {
	owner, ok := m.bindOwner(&s.Primary)
	if !ok {
		return false
	}
	s.Value.bind(m, s, owner)
	s.Primary.bound = true
	m.deferred.Remove(s.Tag())
	return true
}

// RetryDeferred binds every deferred setting whose owner exists now and refreshes it.
func (m *Menu) RetryDeferred() {
	if m.deferred.IsEmpty() {
		return
	}
	bound := tags.NewSet()
	for _, t := range m.deferred.Tags() {
		s, ok := m.registry.Find(t)
		if !ok {
			m.deferred.Remove(t)
			continue
		}
		if m.bindSetting(s) {
			bound.Add(t)
		}
	}
	m.UpdateByTags(bound, false)
}

// bindFunction binds ref on owner when the owner's class exposes it with signature sig.
func bindFunction[F any](m *Menu, p *Primary, ref *FunctionRef, owner any, sig Signature) (F, bool) {
	var zero F
	name := ref.Function()
	if !p.HasOwnerFunction(name) {
		return zero, false
	}
	fn, ok := ref.ResolveOn(m.classes, owner)
	if !ok {
		return zero, false
	}
	if fn.Signature() != sig {
		logf("Warning: %s of %s is %s, expected %s", name, p.Tag, fn.Signature(), sig)
		return zero, false
	}
	f, ok := bindAs[F](fn, owner, sig)
	if !ok {
		logf("Warning: %s of %s does not accept owner %T", name, p.Tag, owner)
	}
	return f, ok
}
