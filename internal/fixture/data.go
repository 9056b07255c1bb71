package fixture

import (
	"airline-booking/internal/data/entity"
)

// Sample records for the demo scenarios. The flights are tuned so each
// scenario starts from a known seat count: BA123 is factory-fresh, KL456 has
// a claimed seat and held seats, OS567 is down to its last two seats.

func seat(label string) *string {
	return &label
}

func Passengers() []*entity.Passenger {
	return []*entity.Passenger{
		{
			EmailAddress:    "jxn.stove@email.com",
			FullName:        "Jon Snow",
			Birthday:        157766400, // 1975-01-01T00:00:00Z
			FrequentFlyerID: "AMS4564",
			Preferences: &entity.Preferences{
				SeatPreference: "Window",
				Timezone:       "Europe/Bucharest",
			},
		},
		{
			EmailAddress:    "harry.soktor@email.com",
			FullName:        "Harry Potter",
			Birthday:        1183766400, // 2007-07-07T00:00:00Z
			FrequentFlyerID: "BASS4565",
			Preferences: &entity.Preferences{
				SeatPreference: "Window",
				MealPreference: []string{"Vegan"},
				Timezone:       "Europe/Chisinau",
			},
		},
		{
			EmailAddress:    "vlad.topee@gmail.com",
			FullName:        "Vlad Tapes",
			Birthday:        -11676096000, // 1600-01-01T00:00:00Z
			FrequentFlyerID: "C44455778",
			Preferences: &entity.Preferences{
				SeatPreference: "Aisle",
				Language:       "Spanish",
				Timezone:       "Europe/Bucharest",
			},
		},
		{
			EmailAddress:    "sherlock.homes@email.com",
			FullName:        "Sherlock Homes",
			Birthday:        -157766400, // 1965-01-01T00:00:00Z
			FrequentFlyerID: "D73979865",
			Preferences: &entity.Preferences{
				MealPreference:            []string{"Gluten-Free"},
				Language:                  "English",
				AccessibilityRequirements: []string{"Wheelchair Access"},
			},
		},
	}
}

func Flights() []*entity.Flight {
	return []*entity.Flight{
		// London Heathrow (LHR) → Paris Charles de Gaulle (CDG),
		// 2025-12-15T10:00Z, every seat still free.
		{
			RouteByDay:     "LHR#CDG#2025-12-15",
			DepartureTime:  "1000",
			FlightNumber:   "BA123",
			AirplaneModel:  "Airbus A320",
			TotalSeats:     180,
			AvailableSeats: 180,
			HeldSeats:      0,
			Version:        1,
			ClaimedSeatMap: map[string]string{},
		},
		// Amsterdam Schiphol (AMS) → Frankfurt (FRA), 2025-05-15T08:00Z.
		{
			RouteByDay:     "AMS#FRA#2025-05-15",
			DepartureTime:  "0800",
			FlightNumber:   "KL456",
			AirplaneModel:  "Boeing 737-800",
			TotalSeats:     189,
			AvailableSeats: 150,
			HeldSeats:      10,
			Version:        1,
			ClaimedSeatMap: map[string]string{"1A": "0159b675-909c-72bc-bd49-07b67670039g"},
		},
		// Madrid Barajas (MAD) → Lisbon (LIS), 2025-06-01T12:00Z.
		{
			RouteByDay:     "MAD#LIS#2025-06-01",
			DepartureTime:  "1200",
			FlightNumber:   "IB789",
			AirplaneModel:  "Airbus A320",
			TotalSeats:     180,
			AvailableSeats: 60,
			HeldSeats:      5,
			Version:        1,
			ClaimedSeatMap: map[string]string{"2B": "0159b66b-9276-7e44-bd46-88565729fc71"},
		},
		// Rome Fiumicino (FCO) → Munich (MUC), 2025-08-01T14:15Z.
		{
			RouteByDay:     "FCO#MUC#2025-08-01",
			DepartureTime:  "1415",
			FlightNumber:   "LH234",
			AirplaneModel:  "Airbus A320",
			TotalSeats:     180,
			AvailableSeats: 175,
			HeldSeats:      3,
			Version:        1,
			ClaimedSeatMap: map[string]string{"3C": "0159b66d-30dc-7de9-9671-46a139874465"},
		},
		// Berlin Brandenburg (BER) → Vienna (VIE), 2026-09-21T17:30Z,
		// nearly sold out.
		{
			RouteByDay:     "BER#VIE#2026-09-21",
			DepartureTime:  "1730",
			FlightNumber:   "OS567",
			AirplaneModel:  "Embraer E195",
			TotalSeats:     120,
			AvailableSeats: 2,
			HeldSeats:      118,
			Version:        1,
			ClaimedSeatMap: map[string]string{"4D": "0159b674-ddfs-7134-b45f-8c1da462rec3"},
		},
	}
}

func Bookings() []*entity.Booking {
	return []*entity.Booking{
		{
			CustomerEmail:     "jxn.stove@email.com",
			BookingID:         "0159b675-909c-72bc-bd49-07b67670039g",
			FlightNumber:      "KL456",
			Source:            "AMS",
			Destination:       "FRA",
			DepartureDateTime: 1747296000, // 2025-05-15T08:00Z
			SeatNumber:        seat("1A"),
			FareClass:         "Economy",
		},
		{
			CustomerEmail:     "jxn.stove@email.com",
			BookingID:         "0159b66b-9276-7e44-bd46-88565729fc71",
			FlightNumber:      "IB789",
			Source:            "MAD",
			Destination:       "LIS",
			DepartureDateTime: 1748779200, // 2025-06-01T12:00Z
			SeatNumber:        seat("2B"),
			FareClass:         "Business",
		},
		{
			CustomerEmail:     "harry.soktor@email.com",
			BookingID:         "0159b66d-30dc-7de9-9671-46a139874465",
			FlightNumber:      "LH234",
			Source:            "FCO",
			Destination:       "MUC",
			DepartureDateTime: 1754057700, // 2025-08-01T14:15Z
			SeatNumber:        seat("3C"),
			FareClass:         "Economy Plus",
		},
		{
			CustomerEmail:     "harry.soktor@email.com",
			BookingID:         "0159b674-ddfs-7134-b45f-8c1da462rec3",
			FlightNumber:      "OS567",
			Source:            "BER",
			Destination:       "VIE",
			DepartureDateTime: 1790011800, // 2026-09-21T17:30Z
			SeatNumber:        seat("4D"),
			FareClass:         "Economy",
		},
	}
}
