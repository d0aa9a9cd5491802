package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyFromPath(t *testing.T) {
	assert.Equal(t, ListingChangedEventV1, generateKeyFromPath("schemas/events/listing-changed/v1.json"))
	assert.Equal(t, MessageCreatedEventV1, generateKeyFromPath("schemas/events/message-created/v1.json"))
	assert.Equal(t, SeedFixturesV1, generateKeyFromPath("schemas/fixtures/v1.json"))
	assert.Equal(t, "", generateKeyFromPath("schemas/other.json"))
}

func TestSchemasCompile(t *testing.T) {
	schemas, err := load()
	require.NoError(t, err)
	assert.Contains(t, schemas, ListingChangedEventV1)
	assert.Contains(t, schemas, MessageCreatedEventV1)
	assert.Contains(t, schemas, SeedFixturesV1)
}

func TestValidateEvent_ListingChanged(t *testing.T) {
	valid := []byte(`{
		"event_id": "6f1c2d9e-3b7a-4c1e-9a55-0d2f8e6b1a40",
		"event_type": "listing.price_changed",
		"listing_id": 12,
		"price": 999,
		"status_id": null,
		"occurred_at": "2024-05-02T10:00:00Z"
	}`)
	assert.NoError(t, ValidateEvent("ListingChangedEvent", "1.0.0", valid))

	unknownType := []byte(`{
		"event_id": "6f1c2d9e-3b7a-4c1e-9a55-0d2f8e6b1a40",
		"event_type": "listing.exploded",
		"listing_id": 12,
		"occurred_at": "2024-05-02T10:00:00Z"
	}`)
	assert.Error(t, ValidateEvent("ListingChangedEvent", "1.0.0", unknownType))

	badID := []byte(`{
		"event_id": "not-a-uuid",
		"event_type": "listing.deleted",
		"listing_id": 12,
		"occurred_at": "2024-05-02T10:00:00Z"
	}`)
	assert.Error(t, ValidateEvent("ListingChangedEvent", "1.0.0", badID))
}

func TestValidateEvent_UnknownSchema(t *testing.T) {
	err := ValidateEvent("ListingChangedEvent", "9.0.0", []byte(`{}`))
	assert.ErrorContains(t, err, "not found")
}

func TestValidateEvent_InvalidJSON(t *testing.T) {
	err := ValidateEvent("MessageCreatedEvent", "1.0.0", []byte(`{`))
	assert.ErrorContains(t, err, "not a valid JSON")
}

func TestValidateFixtures(t *testing.T) {
	valid := []byte(`{
		"roles": [{"name": "Realtor", "description": "Can sell houses"}],
		"statuses": ["For Sale"],
		"property_types": ["Villa"],
		"features": ["Sauna"],
		"companies": [{"name": "MoonHem Agency 1"}],
		"users": [{"first_name": "Anna", "surname": "Berg", "mail": "anna.berg@moonhem.example", "password": "secret123", "role": "Realtor", "company": "MoonHem Agency 1", "license_number": "LIC-000001"}],
		"listings": [{
			"title": "Bright villa", "description": "Sea view", "price": 4500000,
			"energy_class": "C",
			"address": {"street": "Storgatan 1", "city": "Stockholm", "postcode": "11122", "country": "Sweden"},
			"property_type": "Villa", "realtor": "anna.berg@moonhem.example", "status": "For Sale",
			"features": ["Sauna"], "images": ["https://images.example/1.jpg"]
		}]
	}`)
	assert.NoError(t, ValidateFixtures(valid))

	missingListingFields := []byte(`{
		"roles": [{"name": "User"}], "statuses": ["For Sale"], "property_types": ["Villa"],
		"users": [], "listings": [{"title": "No price"}]
	}`)
	assert.Error(t, ValidateFixtures(missingListingFields))
}
