package flake

import (
	"strings"
)

// DefaultStateVersion is the home-manager state version a profile
// declares unless overridden.
const DefaultStateVersion = "24.05"

// Profile describes one per-user home-manager configuration: the user's
// name and home directory, installed packages, and freeform program,
// service and extra settings. The username is fixed at construction;
// everything else accumulates through the builder methods.
type Profile struct {
	username     string
	homeDir      string
	stateVersion string
	system       string
	packages     []string
	programs     *AttrSet
	services     *AttrSet
	extra        *AttrSet
	modules      []string
}

// NewProfile creates a profile builder for the given username.
func NewProfile(username string) *Profile {
	return &Profile{
		username:     username,
		stateVersion: DefaultStateVersion,
		programs:     NewAttrSet(),
		services:     NewAttrSet(),
		extra:        NewAttrSet(),
	}
}

// Username returns the profile's username.
func (p *Profile) Username() string {
	return p.username
}

// HomeDirectory sets the user's home directory, overwriting any previous
// value. Unset, the rendered profile omits the field.
func (p *Profile) HomeDirectory(path string) *Profile {
	p.homeDir = path
	return p
}

// StateVersion overwrites the home-manager state version.
func (p *Profile) StateVersion(version string) *Profile {
	p.stateVersion = version
	return p
}

// System sets the platform used to select the package set for this
// profile's configuration. Defaults to DefaultSystem.
func (p *Profile) System(system string) *Profile {
	p.system = system
	return p
}

// Packages appends packages to home.packages. Names are opaque
// identifiers; order and duplicates are preserved.
func (p *Profile) Packages(names ...string) *Profile {
	p.packages = append(p.packages, names...)
	return p
}

// Program overwrites the whole configuration value of a named program.
func (p *Profile) Program(name string, v Value) *Profile {
	p.programs.Set(name, v)
	return p
}

// EnableProgram configures a named program as just { enable = true; }.
func (p *Profile) EnableProgram(name string) *Profile {
	return p.Program(name, Attrs(A("enable", Bool(true))))
}

// Service overwrites the whole configuration value of a named service.
func (p *Profile) Service(name string, v Value) *Profile {
	p.services.Set(name, v)
	return p
}

// EnableService configures a named service as just { enable = true; }.
func (p *Profile) EnableService(name string) *Profile {
	return p.Service(name, Attrs(A("enable", Bool(true))))
}

// Extra stores a value under an arbitrary dotted option path, overwriting
// only that exact path. The path is rendered verbatim on the left-hand
// side of the assignment.
func (p *Profile) Extra(path string, v Value) *Profile {
	p.extra.Set(path, v)
	return p
}

// Module appends a custom module file path to be imported alongside the
// generated configuration. The paths do not appear in this profile's own
// body; the flake consumes them when it assembles the homeConfigurations
// entry.
func (p *Profile) Module(path string) *Profile {
	p.modules = append(p.modules, path)
	return p
}

// Set assigns a value through a dotted option path. The leading segment
// picks the namespace:
//
//   - "programs" and "services" address the respective mapping. With one
//     remaining segment the whole entry is overwritten; with more,
//     intermediate attribute sets are created on demand and only the
//     terminal leaf is overwritten, leaving sibling keys intact.
//   - "home" shallow-merges the fields of an attribute-set value into the
//     extra settings.
//   - anything else is ignored.
func (p *Profile) Set(path string, v Value) *Profile {
	segs := strings.Split(path, ".")
	switch segs[0] {
	case "programs":
		setNested(p.programs, segs[1:], v)
	case "services":
		setNested(p.services, segs[1:], v)
	case "home":
		if a := v.AttrSet(); a != nil {
			for _, key := range a.Keys() {
				val, _ := a.Get(key)
				p.extra.Set(key, val)
			}
		}
	}
	return p
}

// setNested walks segs through target, creating intermediate attribute
// sets as needed, and overwrites the terminal leaf. Existing siblings at
// every level are preserved; an intermediate that exists but is not an
// attribute set is replaced by one.
func setNested(target *AttrSet, segs []string, v Value) {
	if len(segs) == 0 {
		return
	}
	cur := target
	for _, seg := range segs[:len(segs)-1] {
		existing, ok := cur.Get(seg)
		next := existing.AttrSet()
		if !ok || next == nil {
			next = NewAttrSet()
			cur.Set(seg, AttrsOf(next))
		}
		cur = next
	}
	cur.Set(segs[len(segs)-1], v)
}

// render emits the profile's module body at the given indent level: the
// home.* identity fields, the package list when non-empty, then every
// program, service and extra entry in insertion order. Attribute-set
// entries render as named blocks whose inner lines come straight from
// EncodeBody; scalar entries render as plain assignments.
func (p *Profile) render(indent int) string {
	ind := indentAt(indent)
	var b strings.Builder

	b.WriteString(ind + `home.username = "` + p.username + `";` + "\n")
	if p.homeDir != "" {
		b.WriteString(ind + `home.homeDirectory = "` + p.homeDir + `";` + "\n")
	}
	b.WriteString(ind + `home.stateVersion = "` + p.stateVersion + `";` + "\n")
	if len(p.packages) > 0 {
		b.WriteString(ind + "home.packages = with pkgs; [ " + strings.Join(p.packages, " ") + " ];\n")
	}

	p.renderGroup(&b, "programs.", p.programs, indent)
	p.renderGroup(&b, "services.", p.services, indent)
	p.renderGroup(&b, "", p.extra, indent)

	return b.String()
}

func (p *Profile) renderGroup(b *strings.Builder, prefix string, set *AttrSet, indent int) {
	ind := indentAt(indent)
	for _, name := range set.Keys() {
		v, _ := set.Get(name)
		lhs := prefix + name
		if a := v.AttrSet(); a != nil && a.Len() > 0 {
			b.WriteString(ind + lhs + " = {\n")
			b.WriteString(EncodeBody(a, indent+1))
			b.WriteString(ind + "};\n")
		} else {
			b.WriteString(ind + lhs + " = " + Encode(v, indent) + ";\n")
		}
	}
}
