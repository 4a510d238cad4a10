package platform

// Identity is the display identity of a known host.
type Identity struct {
	Name string
	Tag  string
	Icon string
}

type identifier interface {
	siteFor(host string) (site, bool)
}

// Identify returns the identity of host according to the built-in strategies.
func Identify(host string) (Identity, bool) {
	for _, s := range DefaultStrategies() {
		id, ok := s.(identifier)
		if !ok {
			continue
		}
		if st, ok := id.siteFor(host); ok {
			return Identity{Name: st.name, Tag: st.tag, Icon: st.icon}, true
		}
	}
	return Identity{}, false
}
