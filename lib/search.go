package lib

import (
	"github.com/blevesearch/bleve"
)

type terminalDoc struct {
	Label     string
	Block     string
	Name      string
	XRef      string
	Cable     string
	Hose      string
	Conductor string
	Type      string
}

/*
	Index is an in-memory full-text index over the terminal list, for
	locating terminals by name, cable or cross reference in large
	projects.
*/
type Index struct {
	index     bleve.Index
	terminals map[string]*Terminal
}

func NewTerminalIndex(terminals []*Terminal) (*Index, error) {
	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, err
	}

	ix := &Index{
		index:     index,
		terminals: map[string]*Terminal{},
	}

	for _, t := range terminals {
		ix.terminals[t.UUID] = t
		err := index.Index(t.UUID, terminalDoc{
			Label:     t.Label(),
			Block:     t.Block,
			Name:      t.Name,
			XRef:      t.XRef,
			Cable:     t.Cable,
			Hose:      t.Hose,
			Conductor: t.Conductor,
			Type:      t.Type,
		})
		if err != nil {
			return nil, err
		}
	}

	return ix, nil
}

/*
	Find terminals matching a query string, best hits first.
*/
func (ix *Index) Find(text string) ([]*Terminal, error) {
	request := bleve.NewSearchRequest(bleve.NewQueryStringQuery(text))
	request.Size = len(ix.terminals)

	result, err := ix.index.Search(request)
	if err != nil {
		return nil, err
	}

	matched := []*Terminal{}
	for _, hit := range result.Hits {
		if t, ok := ix.terminals[hit.ID]; ok {
			matched = append(matched, t)
		}
	}

	return matched, nil
}
