package spec

type Config struct {
	Version int           `yaml:"version"`
	Results ResultsConfig `yaml:"results"`
	Output  OutputConfig  `yaml:"output"`
	Report  ReportConfig  `yaml:"report"`
}

type ResultsConfig struct {
	Dir           string `yaml:"dir"`
	FileName      string `yaml:"file_name"`
	CaseDelimiter string `yaml:"case_delimiter"`
}

type OutputConfig struct {
	Dir     string   `yaml:"dir"`
	Formats []string `yaml:"formats"`
}

type ReportConfig struct {
	MetricOrder []string `yaml:"metric_order"`
	Note        string   `yaml:"note"`
}
