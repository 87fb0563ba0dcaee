package catalog

import "gopkg.in/yaml.v3"

// Icon names a glyph the site knows how to draw.
type Icon string

const (
	IconGlobe        Icon = "Globe"
	IconSmartphone   Icon = "Smartphone"
	IconShoppingCart Icon = "ShoppingCart"
	IconZap          Icon = "Zap"
	IconCloud        Icon = "Cloud"
	IconCode         Icon = "Code"
	IconLayout       Icon = "Layout"
)

// FallbackIcon is used for any key outside the known set.
const FallbackIcon = IconZap

var icons = map[string]Icon{
	"Globe":        IconGlobe,
	"Smartphone":   IconSmartphone,
	"ShoppingCart": IconShoppingCart,
	"Zap":          IconZap,
	"Cloud":        IconCloud,
	"Code":         IconCode,
	"Layout":       IconLayout,
}

// IconFor resolves an icon key, falling back to FallbackIcon.
func IconFor(key string) Icon {
	if ic, ok := icons[key]; ok {
		return ic
	}
	return FallbackIcon
}

func (i *Icon) UnmarshalYAML(n *yaml.Node) error {
	var key string
	if err := n.Decode(&key); err != nil {
		return err
	}
	*i = IconFor(key)
	return nil
}
