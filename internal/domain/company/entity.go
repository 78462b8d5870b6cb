package company

type Company struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Directory is the fixed set of company accounts. Companies cannot be created at runtime.
var Directory = []Company{
	{Email: "company@techcorp.com", Password: "demo123", Name: "TechCorp Solutions"},
	{Email: "hr@innovative.com", Password: "demo123", Name: "Innovative Industries"},
	{Email: "recruit@globaltech.com", Password: "demo123", Name: "Global Tech Ltd"},
}

// Authenticate does a linear search for an exact email and password match.
func Authenticate(directory []Company, email, password string) (Company, bool) {
	for _, c := range directory {
		if c.Email == email && c.Password == password {
			return c, true
		}
	}
	return Company{}, false
}
