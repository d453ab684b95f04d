package settings

import "github.com/automoto/doomerang-settings/tags"

// Order flattens tables into display order, moving rows that declare showNextTo
// right after their target.
//
// Within a table, a row with showNextTo opens a block that absorbs the following rows
// until another showNextTo row or the target itself appears. Blocks for the same target
// accumulate across tables. A block is spliced in only after a row that is not in a
// block itself; blocks targeting anything else are dropped.
func Order(tables []Table) []Row {
	ordered, blocks, targets := splitBlocks(tables)

	out := make([]Row, 0, len(ordered))
	emitted := make(map[tags.Tag]bool)
	for _, row := range ordered {
		out = append(out, row)
		tag := tags.New(row.Tag)
		if block, ok := blocks[tag]; ok && !emitted[tag] {
			emitted[tag] = true
			out = append(out, block...)
		}
	}

	for _, target := range targets {
		if !emitted[target] {
			logf("Warning: %d row(s) to show next to %s dropped, no such setting outside a block", len(blocks[target]), target)
		}
	}
	return out
}

// splitBlocks separates the rows outside any showNextTo block from the blocks,
// which are keyed by target in first-seen order.
func splitBlocks(tables []Table) (ordered []Row, blocks map[tags.Tag][]Row, targets []tags.Tag) {
	blocks = make(map[tags.Tag][]Row)
	for _, table := range tables {
		var block []Row
		target := tags.None

		flush := func() {
			if len(block) == 0 {
				return
			}
			if _, ok := blocks[target]; !ok {
				targets = append(targets, target)
			}
			blocks[target] = append(blocks[target], block...)
			block = nil
		}

		for _, row := range table.Rows {
			tag := tags.New(row.Tag)
			if next := tags.New(row.ShowNextTo); next.IsValid() {
				flush()
				target = next
			}
			if target.IsValid() && tag == target {
				flush()
				target = tags.None
			}
			if target.IsValid() {
				block = append(block, row)
			} else {
				ordered = append(ordered, row)
			}
		}
		flush()
	}
	return ordered, blocks, targets
}
