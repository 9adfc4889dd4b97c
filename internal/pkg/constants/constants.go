package constants

// Redis key prefixes
const (
	KeyRateLimitSubmit = "rate:submit" // Format: rate:submit:{route}:{ip}
	KeyRateLimitToken  = "rate:token"  // Format: rate:token:{route}:{ip}
	KeyRateLimitPIN    = "rate:pin"    // Format: rate:pin:{route}:{ip}
)

// NSQ
const (
	TopicEntityChanged = "boleias.entity_changed"
	ChannelExportSync  = "export-sync"
)

// Audit actions
const (
	ActionRequestCreated   = "request_created"
	ActionRequestUpdated   = "request_updated"
	ActionRequestTriaged   = "request_triaged"
	ActionRequestArchived  = "request_archived"
	ActionRequestCancelled = "request_cancelled"
	ActionOfferCreated     = "offer_created"
	ActionOfferUpdated     = "offer_updated"
	ActionOfferCancelled   = "offer_cancelled"
	ActionMatchProposed    = "match_proposed"
	ActionMatchConfirmed   = "match_confirmed"
	ActionMatchStarted     = "match_started"
	ActionMatchCompleted   = "match_completed"
	ActionMatchCancelled   = "match_cancelled"
)

// Audit metadata keys
const (
	MetaPreviousStatus = "previous_status"
	MetaNewStatus      = "new_status"
	MetaRequestID      = "request_id"
	MetaOfferID        = "offer_id"
	MetaMatchID        = "match_id"
	MetaCascade        = "cascade"
	MetaActor          = "actor"
)
