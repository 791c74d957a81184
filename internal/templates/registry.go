package templates

import "fmt"

// Role identifies one generated file of a feature page.
type Role struct {
	// Name is the role identifier, used as the file name suffix
	// (e.g. "binding" -> "<feature>_binding.dart").
	Name string

	// Description explains what the generated file holds.
	Description string
}

// roles is the internal registry, in generation order.
var roles = []Role{
	{Name: "binding", Description: "Dependency injection binding"},
	{Name: "logic", Description: "Logic contract"},
	{Name: "logic_impl", Description: "Logic implementation"},
	{Name: "state", Description: "Page state"},
	{Name: "view", Description: "View layer"},
}

// Roles returns all file roles in generation order.
func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

// Get returns a role by name.
// Returns an error if the role is not found.
func Get(name string) (Role, error) {
	for _, r := range roles {
		if r.Name == name {
			return r, nil
		}
	}
	return Role{}, fmt.Errorf("unknown role %q", name)
}

// FileName returns the generated file name for a role and snake-form
// feature name.
func FileName(role Role, snake string) string {
	return snake + "_" + role.Name + ".dart"
}

// WidgetDir is the subdirectory created inside every feature directory for
// page-local widgets.
const WidgetDir = "widget"
