package conf

var (
	BuiltAt   string = "unknown"
	GitCommit string = "unknown"
	Version   string = "dev"
)

var Conf *Config
