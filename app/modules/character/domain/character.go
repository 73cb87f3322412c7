package characterdomain

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/types"
)

const defaultName = "Unnamed"

var itemLevelPattern = regexp.MustCompile(`^\d{3}$`)

// Form is the raw create/edit form.
type Form struct {
	Name      string
	Class     string
	ItemLevel string
	Roles     []string
	// Specs maps a role to an optional spec name typed next to it.
	Specs map[string]string
}

// FormFromCharacter prefills the edit form.
func FormFromCharacter(c edenapi.Character) Form {
	f := Form{
		Name:      c.Name,
		Class:     c.Class,
		ItemLevel: strconv.Itoa(c.ItemLevel),
		Specs:     make(map[string]string),
	}
	for _, r := range c.Roles() {
		f.Roles = append(f.Roles, string(r))
	}
	for _, s := range c.Specs {
		if r, ok := types.ParseRole(s.Role); ok && s.Spec != "" && s.Spec != s.Role {
			f.Specs[string(r)] = s.Spec
		}
	}
	return f
}

// HasRole reports whether role is checked.
func (f Form) HasRole(role types.Role) bool {
	for _, r := range f.Roles {
		if parsed, ok := types.ParseRole(r); ok && parsed == role {
			return true
		}
	}
	return false
}

// Validated is a form that passed validation.
type Validated struct {
	Name      string
	Class     string
	ItemLevel int
	Specs     []edenapi.CharacterSpec
}

// Validate checks the form. A blank name becomes "Unnamed".
func (f Form) Validate() (Validated, error) {
	ilvl := strings.TrimSpace(f.ItemLevel)
	if !itemLevelPattern.MatchString(ilvl) {
		return Validated{}, ErrItemLevel
	}
	class := strings.TrimSpace(f.Class)
	if class == "" {
		return Validated{}, ErrClassRequired
	}
	if !types.IsClass(class) {
		return Validated{}, ErrUnknownClass
	}

	var specs []edenapi.CharacterSpec
	for _, role := range types.Roles {
		if !f.HasRole(role) {
			continue
		}
		spec := strings.TrimSpace(f.Specs[string(role)])
		if spec == "" {
			spec = string(role)
		}
		specs = append(specs, edenapi.CharacterSpec{Spec: spec, Role: string(role)})
	}
	if len(specs) == 0 {
		return Validated{}, ErrRoleRequired
	}

	name := strings.TrimSpace(f.Name)
	if name == "" {
		name = defaultName
	}

	level, _ := strconv.Atoi(ilvl)
	return Validated{Name: name, Class: class, ItemLevel: level, Specs: specs}, nil
}

// Input is the create payload.
func (v Validated) Input() edenapi.CharacterInput {
	return edenapi.CharacterInput{
		Name:      v.Name,
		Class:     v.Class,
		ItemLevel: v.ItemLevel,
		Specs:     v.Specs,
	}
}

// Update is the edit payload. Every field is sent.
func (v Validated) Update() edenapi.CharacterUpdate {
	return edenapi.CharacterUpdate{
		Name:      &v.Name,
		Class:     &v.Class,
		ItemLevel: &v.ItemLevel,
		Specs:     v.Specs,
	}
}

// NextLock returns the status a badge click moves lock to.
// Only AVAILABLE and LOCKED flip; PENDING and system-managed locks stay.
func NextLock(lock edenapi.Lock) (types.LockStatus, bool) {
	if lock.SystemManaged {
		return lock.Status, false
	}
	switch lock.Status {
	case types.LockAvailable:
		return types.LockLocked, true
	case types.LockLocked:
		return types.LockAvailable, true
	default:
		return lock.Status, false
	}
}

// Summary is the stats row above the character list.
type Summary struct {
	Total        int
	Available    int
	AvgItemLevel int
}

// Summarize counts characters. Available means not locked on any difficulty.
func Summarize(chars []edenapi.Character) Summary {
	s := Summary{Total: len(chars)}
	if len(chars) == 0 {
		return s
	}

	sum := 0
	for _, c := range chars {
		sum += c.ItemLevel
		if isAvailable(c) {
			s.Available++
		}
	}
	s.AvgItemLevel = (sum + len(chars)/2) / len(chars)
	return s
}

func isAvailable(c edenapi.Character) bool {
	for _, d := range types.Difficulties {
		if c.Lock(d).Status != types.LockAvailable {
			return false
		}
	}
	return true
}
