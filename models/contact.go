package models

const (
	MaxContactNameLength  = 50
	MaxContactPhoneLength = 20
)

// Contact is an address-book entry. Phone numbers and emails are unique
// across the collection; the handler checks that against the store before
// inserting.
type Contact struct {
	ID          int64  `json:"id" bson:"_id"`
	Name        string `json:"name" bson:"name"`
	PhoneNumber string `json:"phone_number" bson:"phone_number"`
	Email       string `json:"email" bson:"email"`
}

type ContactRepresentation struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

type ContactInput struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
	Email       *string `json:"email"`
}

func SerializeContact(c *Contact) ContactRepresentation {
	return ContactRepresentation{Name: c.Name, PhoneNumber: c.PhoneNumber, Email: c.Email}
}

func SerializeContacts(contacts []Contact) []ContactRepresentation {
	out := make([]ContactRepresentation, 0, len(contacts))
	for i := range contacts {
		out = append(out, SerializeContact(&contacts[i]))
	}
	return out
}

// DeserializeContact validates in and applies it onto c. Contacts are
// create-only, so there is no partial mode.
func DeserializeContact(in ContactInput, c *Contact) ValidationErrors {
	errs := ValidationErrors{}

	validateText(errs, "name", in.Name, MaxContactNameLength, false)
	validateText(errs, "phone_number", in.PhoneNumber, MaxContactPhoneLength, false)

	if in.Email == nil {
		errs.Add("email", msgRequired)
	} else if *in.Email == "" {
		errs.Add("email", msgBlank)
	} else if !validEmail(*in.Email) {
		errs.Add("email", msgInvalidEmail)
	}

	if len(errs) > 0 {
		return errs
	}

	c.Name = *in.Name
	c.PhoneNumber = *in.PhoneNumber
	c.Email = *in.Email
	return nil
}
