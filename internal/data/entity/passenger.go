package entity

// Passenger is a fixture entity: created by the seeder, never mutated by the
// booking flow.
type Passenger struct {
	EmailAddress    string       `dynamodbav:"EmailAddress" validate:"required,email"`
	FullName        string       `dynamodbav:"FullName"`
	Birthday        int64        `dynamodbav:"Birthday"`
	FrequentFlyerID string       `dynamodbav:"FrequentFlyerID"`
	Preferences     *Preferences `dynamodbav:"Preferences,omitempty"`
}

type Preferences struct {
	SeatPreference            string   `dynamodbav:"SeatPreference,omitempty"`
	MealPreference            []string `dynamodbav:"MealPreference,omitempty"`
	Timezone                  string   `dynamodbav:"Timezone,omitempty"`
	Language                  string   `dynamodbav:"Language,omitempty"`
	AccessibilityRequirements []string `dynamodbav:"AccessibilityRequirements,omitempty"`
}
