package settings

import (
	"errors"
	"fmt"

	"github.com/automoto/doomerang-settings/tags"
)

// Validate checks tables against classes and returns every problem found, or nil.
func Validate(tables []Table, classes *ClassRegistry) *ValidationErrors {
	errs := &ValidationErrors{}

	declared := make(map[tags.Tag]string)
	for _, table := range tables {
		for i, row := range table.Rows {
			if t := tags.New(row.Tag); t.IsValid() {
				if _, ok := declared[t]; !ok {
					declared[t] = rowPath(table, i, row)
				}
			}
		}
	}

	placed := make(map[tags.Tag]bool)
	ordered, _, _ := splitBlocks(tables)
	for _, row := range ordered {
		placed[tags.New(row.Tag)] = true
	}

	for _, table := range tables {
		for i, row := range table.Rows {
			validateRow(errs, classes, declared, placed, rowPath(table, i, row), row)
		}
	}

	if !errs.HasErrors() {
		return nil
	}
	return errs
}

func rowPath(table Table, i int, row Row) string {
	return fmt.Sprintf("%s[%d] %s", table.Name, i, row.Name())
}

func validateRow(errs *ValidationErrors, classes *ClassRegistry, declared map[tags.Tag]string, placed map[tags.Tag]bool, path string, row Row) {
	tag := tags.New(row.Tag)
	switch {
	case row.Tag == "":
		errs.Add(path, ErrInvalidTag, "tag is not set, the setting can't be displayed")
	case !tag.IsValid():
		errs.Add(path, ErrInvalidTag, "malformed tag %q", row.Tag)
	case declared[tag] != path:
		errs.Add(path, ErrDuplicateTag, "tag %s already declared at %s", tag, declared[tag])
	}

	kind, err := row.Kind()
	if err != nil {
		errs.Add(path, sentinelOf(err), "%v", err)
	}

	if row.Owner.isSet() {
		checkFunction(errs, classes, path, "owner", row.Owner, SigOwner)
	} else if row.Setter.isSet() || row.Getter.isSet() {
		errs.Add(path, ErrFunctionNotFound, "setter or getter set without an owner function")
	}

	if err == nil {
		checkFunction(errs, classes, path, "setter", row.Setter, kind.setterSignature())
		checkFunction(errs, classes, path, "getter", row.Getter, kind.getterSignature())
		if kind == KindCombobox && row.Combobox != nil {
			checkFunction(errs, classes, path, "getMembers", row.Combobox.GetMembers, SigGetMembers)
			checkFunction(errs, classes, path, "setMembers", row.Combobox.SetMembers, SigSetMembers)
		}
	}

	for _, name := range row.SettingsToUpdate {
		if !tags.New(name).IsValid() {
			errs.Add(path, ErrInvalidTag, "malformed settingsToUpdate tag %q", name)
		}
	}

	if row.ShowNextTo != "" {
		next := tags.New(row.ShowNextTo)
		switch {
		case !next.IsValid():
			errs.Add(path, ErrInvalidTag, "malformed showNextTo tag %q", row.ShowNextTo)
		case next == tag:
			errs.Add(path, ErrDanglingOverride, "setting is shown next to itself")
		case declared[next] == "":
			errs.Add(path, ErrDanglingOverride, "showNextTo %s is not declared by any row", next)
		case !placed[next]:
			errs.Add(path, ErrDanglingOverride, "showNextTo %s is itself shown next to another setting", next)
		}
	}
}

// checkFunction reports a function spec that is incomplete, unresolvable or of the wrong signature.
func checkFunction(errs *ValidationErrors, classes *ClassRegistry, path, role string, spec FunctionSpec, want Signature) {
	if !spec.isSet() {
		return
	}
	if spec.Class == "" || spec.Function == "" {
		errs.Add(path, ErrFunctionNotFound, "%s %s is incomplete", role, spec.Ref())
		return
	}
	cls, ok := classes.Class(spec.Class)
	if !ok {
		errs.Add(path, ErrUnknownClass, "%s class %q is not registered", role, spec.Class)
		return
	}
	fn, ok := cls.Function(spec.Function)
	if !ok {
		errs.Add(path, ErrFunctionNotFound, "%s %s is not found", role, spec.Ref())
		return
	}
	if want != SigNone && fn.Signature() != want {
		errs.Add(path, ErrSignatureMismatch, "%s %s is %s, expected %s", role, spec.Ref(), fn.Signature(), want)
	}
}

func sentinelOf(err error) error {
	for _, s := range []error{ErrInvalidTag, ErrUnknownType, ErrAmbiguousValue} {
		if errors.Is(err, s) {
			return s
		}
	}
	return nil
}
