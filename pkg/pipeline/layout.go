package pipeline

import (
	"github.com/matzehuels/planview/pkg/garden"
	"github.com/matzehuels/planview/pkg/office"
)

// Layout derives the named scenes of a document without caching.
func Layout(doc map[string]any, opts Options) ([]View, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, err
	}
	switch opts.Kind {
	case KindOffice:
		return layoutOffice(doc, opts)
	default:
		return layoutGarden(doc, opts)
	}
}

func layoutOffice(doc map[string]any, opts Options) ([]View, error) {
	ds, err := office.FromMapping(doc)
	if err != nil {
		return nil, err
	}

	if opts.View != "" {
		s, err := office.View(ds, opts.View)
		if err != nil {
			return nil, err
		}
		return []View{{Name: opts.View, Scene: s}}, nil
	}

	named, err := office.Scenes(ds)
	if err != nil {
		return nil, err
	}
	views := make([]View, len(named))
	for i, n := range named {
		views[i] = View{Name: n.Name, Scene: n.Scene}
	}
	return views, nil
}

func layoutGarden(doc map[string]any, opts Options) ([]View, error) {
	d, err := garden.DocumentFromMapping(doc)
	if err != nil {
		return nil, err
	}
	title := d.Title
	if opts.Title != "" {
		title = opts.Title
	}
	s, err := garden.BuildScene(d.Sections, garden.Options{Title: title})
	if err != nil {
		return nil, err
	}
	return []View{{Name: GardenView, Scene: s}}, nil
}
