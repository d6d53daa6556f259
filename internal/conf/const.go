package conf

// sort preference values persisted in the config file
const (
	SortByName        = "name"
	SortByDate        = "date"
	SortBySize        = "size"
	SortByContentType = "content_type"

	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

const (
	DefaultBaseURL = "https://storage.rcs-rds.ro"
	DefaultTimeout = 30 // seconds
)
