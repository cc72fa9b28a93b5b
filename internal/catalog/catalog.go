// Package catalog is the registry of packing modules: the fixed built-in set
// merged with the user's custom modules.
package catalog

import (
	"regexp"
	"sort"
	"strings"

	"github.com/julianstephens/smartpack/internal/constants"
	apperrors "github.com/julianstephens/smartpack/internal/errors"
	"github.com/julianstephens/smartpack/internal/models"
)

var (
	nonKeyChars = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// EditResult is the outcome of a module item edit. IsNewCustom is set when
// the edited module was a built-in, meaning the caller should store the
// result as a new custom override.
type EditResult struct {
	Module      models.PackingModule
	IsNewCustom bool
}

// BuiltinKeys returns the built-in module keys in display order.
func BuiltinKeys() []string {
	return append([]string(nil), builtinKeys...)
}

// GetAll merges the built-in modules with custom. Custom entries win on key
// collision. The returned modules are copies.
func GetAll(custom map[string]models.PackingModule) map[string]models.PackingModule {
	all := make(map[string]models.PackingModule, len(builtins)+len(custom))
	for k, m := range builtins {
		all[k] = m.Clone()
	}
	for k, m := range custom {
		all[k] = m.Clone()
	}
	return all
}

// Keys returns every key of the merged catalog: built-ins in display order
// followed by custom-only keys sorted by name.
func Keys(custom map[string]models.PackingModule) []string {
	keys := BuiltinKeys()
	var extra []string
	for k := range custom {
		if _, ok := builtins[k]; !ok {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}

// Get looks a module up in the merged catalog.
func Get(key string, custom map[string]models.PackingModule) (models.PackingModule, bool) {
	if m, ok := custom[key]; ok {
		return m.Clone(), true
	}
	if m, ok := builtins[key]; ok {
		return m.Clone(), true
	}
	return models.PackingModule{}, false
}

// Exists reports whether key resolves in the merged catalog.
func Exists(key string, custom map[string]models.PackingModule) bool {
	_, ok := Get(key, custom)
	return ok
}

// IsCustom reports whether key is not a built-in key. Unknown keys count as
// custom.
func IsCustom(key string) bool {
	_, ok := builtins[key]
	return !ok
}

// GenerateKey derives a module key from a display name: lowercase, drop
// everything outside [a-z0-9] and whitespace, remove whitespace, and cut to
// 20 bytes. The result may be empty.
func GenerateKey(name string) string {
	key := strings.ToLower(name)
	key = nonKeyChars.ReplaceAllString(key, "")
	key = whitespace.ReplaceAllString(key, "")
	if len(key) > constants.MaxModuleKeyLen {
		key = key[:constants.MaxModuleKeyLen]
	}
	return key
}

// Create builds a new custom module from user input. It does not check the
// generated key against existing modules.
func Create(name, icon string, items ...string) (string, models.PackingModule, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", models.PackingModule{}, apperrors.NewValidation("module name", "module name is required")
	}
	if icon == "" {
		icon = constants.DefaultModuleIcon
	}
	m := models.PackingModule{
		Name:  trimmed,
		Icon:  icon,
		Items: append([]string{}, items...),
	}
	return GenerateKey(name), m, nil
}

// Validate reports whether a decoded JSON value has the shape of a module:
// an object with a non-blank string name, a string icon, and an items array.
func Validate(candidate any) bool {
	obj, ok := candidate.(map[string]any)
	if !ok || obj == nil {
		return false
	}
	name, ok := obj["name"].(string)
	if !ok || strings.TrimSpace(name) == "" {
		return false
	}
	if _, ok := obj["icon"].(string); !ok {
		return false
	}
	if _, ok := obj["items"].([]any); !ok {
		return false
	}
	return true
}

// Stats counts the merged catalog. Custom overrides of built-ins are counted
// in both Default and Custom, matching the stored data.
func Stats(custom map[string]models.PackingModule) models.ModuleStats {
	all := GetAll(custom)
	items := 0
	for _, m := range all {
		items += len(m.Items)
	}
	return models.ModuleStats{
		Total:      len(builtins) + len(custom),
		Default:    len(builtins),
		Custom:     len(custom),
		TotalItems: items,
	}
}

// AddItem appends a trimmed item name to a module's template.
func AddItem(key, name string, custom map[string]models.PackingModule) (EditResult, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return EditResult{}, apperrors.NewValidation("item name", "item name is required")
	}
	m, ok := Get(key, custom)
	if !ok {
		return EditResult{}, apperrors.NewNotFound("module", key)
	}
	m.Items = append(m.Items, trimmed)
	return EditResult{Module: m, IsNewCustom: !IsCustom(key)}, nil
}

// RemoveItem drops the template item at index.
func RemoveItem(key string, index int, custom map[string]models.PackingModule) (EditResult, error) {
	m, ok := Get(key, custom)
	if !ok {
		return EditResult{}, apperrors.NewNotFound("module", key)
	}
	if index < 0 || index >= len(m.Items) {
		return EditResult{}, apperrors.NewIndex(index, len(m.Items))
	}
	m.Items = append(m.Items[:index], m.Items[index+1:]...)
	return EditResult{Module: m, IsNewCustom: !IsCustom(key)}, nil
}

// UpdateItem renames the template item at index.
func UpdateItem(key string, index int, name string, custom map[string]models.PackingModule) (EditResult, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return EditResult{}, apperrors.NewValidation("item name", "item name is required")
	}
	m, ok := Get(key, custom)
	if !ok {
		return EditResult{}, apperrors.NewNotFound("module", key)
	}
	if index < 0 || index >= len(m.Items) {
		return EditResult{}, apperrors.NewIndex(index, len(m.Items))
	}
	m.Items[index] = trimmed
	return EditResult{Module: m, IsNewCustom: !IsCustom(key)}, nil
}
