package apitest

import "github.com/dmitrijs2005/gophprofile/internal/client/models"

const EmilyPassword = "emilyspass"

// Emily mirrors the first DummyJSON demo user.
func Emily() models.User {
	return models.User{
		ID:         1,
		Username:   "emilys",
		Email:      "emily.johnson@x.dummyjson.com",
		FirstName:  "Emily",
		LastName:   "Johnson",
		MaidenName: "Smith",
		Age:        28,
		Gender:     "female",
		Phone:      "+81 965-431-3024",
		BirthDate:  "1996-5-30",
		Image:      "https://dummyjson.com/icon/emilys/128",
		BloodGroup: "O-",
		Height:     193.24,
		Weight:     63.16,
		EyeColor:   "Green",
		Hair:       models.Hair{Color: "Brown", Type: "Curly"},
		Address: models.Address{
			Address:     "626 Main Street",
			City:        "Phoenix",
			State:       "Mississippi",
			StateCode:   "MS",
			PostalCode:  "29112",
			Coordinates: models.Coordinates{Lat: -77.16213, Lng: -92.084824},
			Country:     "United States",
		},
		Company: models.Company{
			Department: "Engineering",
			Name:       "Dooley, Kozey and Cronin",
			Title:      "Sales Manager",
			Address: models.Address{
				Address:    "263 Tenth Street",
				City:       "San Francisco",
				State:      "Wisconsin",
				PostalCode: "37657",
				Country:    "United States",
			},
		},
		Role: "admin",
	}
}
