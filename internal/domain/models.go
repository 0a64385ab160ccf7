package domain

// DefaultInterval is the scheduling tag assigned to entries that don't set one.
const DefaultInterval = "1m"

// Entry is one configured URL to monitor. URL doubles as the key for
// status lookups, so it must be unique within a list.
type Entry struct {
	URL      string `yaml:"url" json:"url"`
	Name     string `yaml:"name,omitempty" json:"name,omitempty"`
	Interval string `yaml:"interval,omitempty" json:"interval,omitempty"`
	Mode     Mode   `yaml:"mode,omitempty" json:"mode,omitempty"`
}

// DisplayName returns the label used in notifications and logs.
func (e Entry) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return e.URL
}
