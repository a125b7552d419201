package scene

import "github.com/gtmstudio/scenedirector/internal/director"

// Document is a page or portfolio built from animated scenes
type Document struct {
	Version string  `yaml:"version" json:"version"`
	Title   string  `yaml:"title,omitempty" json:"title,omitempty"`
	Scenes  []Scene `yaml:"scenes" json:"scenes"`
}

// Scene is a single block of animated content (text, image or video)
type Scene struct {
	ID       int              `yaml:"id" json:"id"`
	Type     string           `yaml:"type,omitempty" json:"type,omitempty"`
	Title    string           `yaml:"title,omitempty" json:"title,omitempty"`
	Children int              `yaml:"children,omitempty" json:"children,omitempty"` // elements revealed with staggerChildren
	Director *director.Config `yaml:"director,omitempty" json:"director,omitempty"`
}

// Directors returns the director configs of all scenes in order.
// Scenes without a director block yield nil entries.
func (d *Document) Directors() []*director.Config {
	out := make([]*director.Config, len(d.Scenes))
	for i, s := range d.Scenes {
		out[i] = s.Director
	}
	return out
}

// Clone returns a copy whose scenes and director configs can be modified
// without affecting d.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := *d
	out.Scenes = make([]Scene, len(d.Scenes))
	for i, s := range d.Scenes {
		s.Director = s.Director.Clone()
		out.Scenes[i] = s
	}
	return &out
}
