package models

// PackingItem is a single line on a trip checklist.
type PackingItem struct {
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
	Custom  bool   `json:"custom"`
}

// PackingModule is a named, reusable template list of item names.
type PackingModule struct {
	Name  string   `json:"name"`
	Icon  string   `json:"icon"`
	Items []string `json:"items"`
}

// Clone returns a copy of the module that shares no backing arrays.
func (m PackingModule) Clone() PackingModule {
	out := m
	out.Items = append([]string(nil), m.Items...)
	if out.Items == nil {
		out.Items = []string{}
	}
	return out
}

// ItemsFromModule builds fresh, unchecked, non-custom checklist items from a
// module's template names.
func ItemsFromModule(m PackingModule) []PackingItem {
	items := make([]PackingItem, 0, len(m.Items))
	for _, name := range m.Items {
		items = append(items, PackingItem{Name: name})
	}
	return items
}

// ModuleStats summarizes the merged catalog.
type ModuleStats struct {
	Total      int `json:"total"`
	Default    int `json:"default"`
	Custom     int `json:"custom"`
	TotalItems int `json:"totalItems"`
}

// Progress is the checked/total derivation over selected modules.
type Progress struct {
	TotalItems   int `json:"totalItems"`
	CheckedItems int `json:"checkedItems"`
	Percentage   int `json:"percentage"`
}

// StorageSize reports how much room the persisted state occupies.
type StorageSize struct {
	Bytes         int `json:"bytes"`
	Characters    int `json:"characters"`
	TripHistory   int `json:"tripHistory"`
	CustomModules int `json:"customModules"`
	PackingData   int `json:"packingData"`
}

// KB returns the size in kilobytes with two decimals of precision.
func (s StorageSize) KB() float64 {
	return float64(int(float64(s.Bytes)/1024*100+0.5)) / 100
}
