package schema

// Document is the on-disk form of a device description.
type Document struct {
	ID             string             `yaml:"id" json:"id"`
	Type           string             `yaml:"type" json:"type"`
	Name           string             `yaml:"name" json:"name"`
	Version        string             `yaml:"version" json:"version"`
	GUID           string             `yaml:"guid" json:"guid,omitempty"`
	Description    string             `yaml:"description" json:"description,omitempty"`
	Configs        []ConfigDoc        `yaml:"configs" json:"configs,omitempty"`
	DataItems      []DataItemDoc      `yaml:"dataItems" json:"dataItems,omitempty"`
	Components     []ComponentDoc     `yaml:"components" json:"components,omitempty"`
	SampleChannels []SampleChannelDoc `yaml:"sampleChannels" json:"sampleChannels,omitempty"`
}

// ConfigDoc describes a configuration parameter.
type ConfigDoc struct {
	ID          string `yaml:"id" json:"id"`
	Type        string `yaml:"type" json:"type"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description,omitempty"`
	DataType    string `yaml:"dataType" json:"dataType,omitempty"`
	Settable    bool   `yaml:"settable" json:"settable,omitempty"`
	ValueType   string `yaml:"valueType" json:"valueType,omitempty"`

	// Value is decoded generically and converted according to ValueType.
	Value any `yaml:"value" json:"value,omitempty"`
}

// DataItemDoc describes a data item.
type DataItemDoc struct {
	ID          string `yaml:"id" json:"id"`
	Type        string `yaml:"type" json:"type"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description,omitempty"`
	Number      string `yaml:"number" json:"number,omitempty"`
	DataType    string `yaml:"dataType" json:"dataType,omitempty"`
	Settable    bool   `yaml:"settable" json:"settable,omitempty"`
}

// ComponentDoc describes a component and its children.
type ComponentDoc struct {
	ID          string         `yaml:"id" json:"id"`
	Type        string         `yaml:"type" json:"type"`
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description" json:"description,omitempty"`
	Number      string         `yaml:"number" json:"number,omitempty"`
	Configs     []ConfigDoc    `yaml:"configs" json:"configs,omitempty"`
	DataItems   []DataItemDoc  `yaml:"dataItems" json:"dataItems,omitempty"`
	Components  []ComponentDoc `yaml:"components" json:"components,omitempty"`
}

// SampleChannelDoc describes a sample channel. Intervals are milliseconds.
type SampleChannelDoc struct {
	ID             string   `yaml:"id" json:"id"`
	Type           string   `yaml:"type" json:"type"`
	Name           string   `yaml:"name" json:"name"`
	Description    string   `yaml:"description" json:"description,omitempty"`
	SampleInterval int64    `yaml:"sampleInterval" json:"sampleInterval"`
	UploadInterval int64    `yaml:"uploadInterval" json:"uploadInterval"`
	IDs            []string `yaml:"ids" json:"ids,omitempty"`
}
