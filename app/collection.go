package app

import (
	"github.com/lixenwraith/vinyl-slasher/catalog"
	"github.com/lixenwraith/vinyl-slasher/ledger"
	"github.com/lixenwraith/vinyl-slasher/render"
)

// Collection lists every album in the given order with its unlock state
func Collection(cat *catalog.Catalog, l *ledger.Ledger, order catalog.SortOrder) render.CollectionView {
	albums := cat.Sorted(order)
	view := render.CollectionView{
		Entries: make([]render.CollectionEntry, len(albums)),
		Order:   order,
		Total:   len(albums),
	}
	for i, a := range albums {
		unlocked := l.IsUnlocked(a.ID())
		view.Entries[i] = render.CollectionEntry{Album: a, Unlocked: unlocked}
		if unlocked {
			view.Unlocked++
		}
	}
	return view
}

// toggleSort flips between rank and alphabetical ordering
func toggleSort(o catalog.SortOrder) catalog.SortOrder {
	if o == catalog.SortByRank {
		return catalog.SortAlphabetical
	}
	return catalog.SortByRank
}
