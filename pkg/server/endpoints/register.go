package endpoints

import (
	"devreg/pkg/model"
	"devreg/pkg/server"
)

// RegisterAll registers every record type and the status endpoint on the
// server. Relation fields are written as location_id / api_user_id on device
// create and update.
func RegisterAll(s *server.Server) {
	RegisterResource(s, "api", model.DeviceType)
	RegisterResource(s, "api", model.ApiUserType)
	RegisterResource(s, "api", model.LocationType)

	RegisterStatusEndpoint(s)
}
