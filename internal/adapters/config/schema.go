package config

// Projectfile represents the structure of the tracked ferry.yaml file.
// Every field is optional; omitted fields keep the defaults from domain.DefaultSettings.
type Projectfile struct {
	Project      string      `yaml:"project"`
	Manifest     string      `yaml:"manifest"`
	Header       string      `yaml:"header"`
	HeaderPrefix string      `yaml:"header_prefix"`
	State        string      `yaml:"state"`
	SettleDelay  *string     `yaml:"settle_delay"`
	Publish      []string    `yaml:"publish"`
	Darwin       *DarwinDTO  `yaml:"darwin"`
	Windows      *WindowsDTO `yaml:"windows"`
}

// DarwinDTO represents the xcodebuild section.
type DarwinDTO struct {
	ProjectDir string   `yaml:"project_dir"`
	Schemes    []string `yaml:"schemes"`
	BuildDirs  []string `yaml:"build_dirs"`
}

// WindowsDTO represents the MSBuild section.
type WindowsDTO struct {
	MSBuild    string   `yaml:"msbuild"`
	ProjectDir string   `yaml:"project_dir"`
	Solution   string   `yaml:"solution"`
	Platforms  []string `yaml:"platforms"`
	BuildDirs  []string `yaml:"build_dirs"`
}

// Localfile represents the untracked ferry.local.yaml file.
type Localfile struct {
	SharedRoot string `yaml:"shared_root"`
}
