package constant

import (
	"time"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamDate     = "date"
	RequestParamTimezone = "timezone"
	RequestParamLocale   = "locale"
	RequestParamPreset   = "preset"
	RequestParamFrom     = "from"
	RequestParamTo       = "to"
	RequestParamVendorID = "vendor_id"
	RequestParamID       = "id"
	RequestParamStatus   = "status"
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	MaxValueLimit       = 100
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

const (
	FieldCreatedAt = "created_at"
)

const (
	DateFormat = time.RFC3339
	// ISOMillisFormat matches the UTC boundary strings consumed by range queries.
	ISOMillisFormat = "2006-01-02T15:04:05.000Z"
	LocalDateFormat = "2006-01-02"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderContentEncoding    = "Content-Encoding"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderRetryAfter         = "Retry-After"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeCSV  = "text/csv"
	EncodingGzip    = "gzip"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy       = "SERVER UNHEALTHY"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
