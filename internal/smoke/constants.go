package smoke

// HTTP status code constants.
const (
	StatusOK = 200
)

// Worker configuration constants.
const (
	WorkerChannelMultiplier = 2
)

// Expected chart geometry.
const (
	KindBubble             = "bubble"
	KindChoropleth         = "choropleth"
	ProjectionWorld        = "natural earth"
	ProjectionRegional     = "equirectangular"
	SizeMaxWorld           = 20
	SizeMaxRegional        = 80
	WorldScope             = "world"
	PercentageMultiplier   = 100
	trendTitlePrefix       = "Thumbnail shows "
	trendTitleSuffix       = " for the five countries with the highest deaths per capita over the period"
	mainTitlePrefix        = "Showing "
	defaultTrendCountries  = 5
	maxResponseBytes int64 = 64 << 20
)

// countMetrics are drawn as bubbles; every other metric is a choropleth.
var countMetrics = map[string]bool{
	"ConfirmedCases":  true,
	"ConfirmedDeaths": true,
}
