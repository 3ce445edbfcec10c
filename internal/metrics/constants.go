package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric this service exports
const Namespace = "stackgrid"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Inventory metric names
const (
	MetricNameItemsDeposited  = "items_deposited_total"
	MetricNameDepositLeftover = "deposit_leftover_total"
	MetricNameUnknownItems    = "unknown_item_lookups_total"
	MetricNameSwaps           = "swaps_total"
	MetricNameItemsCombined   = "items_combined_total"
	MetricNameTransfers       = "transfers_total"
	MetricNameInventoriesLive = "inventories_live"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Inventory metric help text
const (
	HelpTextItemsDeposited  = "Units placed by deposit-by-name"
	HelpTextDepositLeftover = "Units returned by deposit-by-name because the inventory was full"
	HelpTextUnknownItems    = "Deposits of items missing from the catalog"
	HelpTextSwaps           = "Slot swaps by outcome"
	HelpTextItemsCombined   = "Units moved between stacks of the same item"
	HelpTextTransfers       = "Transfers into empty slots by outcome"
	HelpTextInventoriesLive = "Inventories currently held in the registry"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelItem   = "item"
	LabelResult = "result"
)

// Label values
const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"

	// LabelValueUnknown labels items the catalog does not declare
	LabelValueUnknown = "unknown"

	// PathUnmatched labels requests that matched no route
	PathUnmatched = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
