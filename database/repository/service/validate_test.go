package serviceRepo

import (
	"testing"

	"consultly/models"
	"consultly/utils"

	"github.com/stretchr/testify/assert"
)

func TestCreateRejectsInvalidService(t *testing.T) {
	cases := []struct {
		name string
		svc  models.Service
	}{
		{"missing name", models.Service{Price: 100, DurationMinutes: 60}},
		{"zero price", models.Service{Name: "Career Consultation", DurationMinutes: 60}},
		{"negative price", models.Service{Name: "Career Consultation", Price: -10, DurationMinutes: 60}},
		{"zero duration", models.Service{Name: "Career Consultation", Price: 100}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := &MongoServiceRepo{}
			err := r.Create(&tc.svc)
			var ve *utils.ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}
