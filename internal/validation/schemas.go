package validation

const uuidPattern = "^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$"

// notBlank rejects empty strings and strings made only of whitespace.
const notBlank = `"type": "string", "pattern": "\\S"`

var clientSchemaSource = `{
	"type": "object",
	"required": ["brand_name", "domain"],
	"properties": {
		"brand_name": {` + notBlank + `, "maxLength": 200},
		"domain": {` + notBlank + `, "maxLength": 255},
		"country_id": {"type": "string", "pattern": "` + uuidPattern + `"},
		"logo_url": {"type": "string"},
		"agent_status": {"type": "string", "enum": ["ready", "in_progress"]}
	}
}`

var campaignSchemaSource = `{
	"type": "object",
	"required": ["title", "client_id", "status"],
	"properties": {
		"title": {` + notBlank + `, "maxLength": 200},
		"client_id": {"type": "string", "pattern": "` + uuidPattern + `"},
		"objective_id": {"type": "string", "pattern": "` + uuidPattern + `"},
		"channel_id": {"type": "string", "pattern": "` + uuidPattern + `"},
		"status": {"type": "string", "enum": ["Idea", "Planned", "Running", "Finished"]}
	}
}`

var videoSchemaSource = `{
	"type": "object",
	"required": ["title", "craft"],
	"properties": {
		"title": {` + notBlank + `, "maxLength": 200},
		"campaign_id": {"type": "string", "pattern": "` + uuidPattern + `"},
		"format": {"type": "string", "maxLength": 50},
		"craft": {"type": "string", "enum": ["Brand", "Creator"]},
		"creator_name": {"type": "string", "maxLength": 200}
	}
}`

var relevanceScoreSchemaSource = `{
	"type": "object",
	"required": ["score"],
	"properties": {
		"score": {"type": "number", "minimum": 0, "maximum": 100},
		"rationale": {"type": "string"}
	}
}`

var loginSchemaSource = `{
	"type": "object",
	"required": ["email", "password"],
	"properties": {
		"email": {` + notBlank + `},
		"password": {` + notBlank + `}
	}
}`
