package model

// JSON Schemas for the create/update payloads, one per entity variant.
// Enumerated fields accept the stable keys only; unknown fields are
// rejected so loosely-typed input never reaches the store.

const projectInputSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "description"],
  "additionalProperties": false,
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "description": {"type": "string", "minLength": 1},
    "technologies": {"type": "string"},
    "live_url": {"type": "string"},
    "github_url": {"type": "string"},
    "project_type": {"enum": ["web_app", "website", "mobile_app", "api", "tool"]},
    "featured": {"type": "boolean"}
  }
}`

const skillInputSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "category"],
  "additionalProperties": false,
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "category": {"enum": ["frontend", "backend", "database", "tools", "design", "other"]},
    "proficiency": {"enum": ["beginner", "intermediate", "advanced", "expert"]},
    "years_experience": {"type": "integer", "minimum": 0}
  }
}`

const workExperienceInputSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["job_title", "company", "start_date"],
  "additionalProperties": false,
  "properties": {
    "job_title": {"type": "string", "minLength": 1},
    "company": {"type": "string", "minLength": 1},
    "company_website": {"type": "string"},
    "start_date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
    "end_date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
    "current_position": {"type": "boolean"},
    "description": {"type": "string"},
    "achievements": {"type": "string"},
    "technologies": {"type": "string"}
  }
}`

const testimonialInputSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "testimonial"],
  "additionalProperties": false,
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "position": {"type": "string"},
    "company": {"type": "string"},
    "testimonial": {"type": "string", "minLength": 1},
    "rating": {"enum": ["3", "4", "5"]},
    "featured": {"type": "boolean"}
  }
}`
