package method

type Method uint8

const (
	Unknown Method = iota
	GET
	PUT
	POST
	DELETE

	// Count is the last one enum, so contains the greatest integer value of all the
	// methods. So real number of methods is lower by 1
	Count = iota - 1
)

// List contains all the supported HTTP methods, sorted by their integer value.
// Unknown is not included.
var List = []Method{GET, PUT, POST, DELETE}

// Parse returns the method corresponding to the token, or Unknown for any token
// outside the supported set.
func Parse(str string) Method {
	switch len(str) {
	case 3:
		if str == "GET" {
			return GET
		} else if str == "PUT" {
			return PUT
		}
	case 4:
		if str == "POST" {
			return POST
		}
	case 6:
		if str == "DELETE" {
			return DELETE
		}
	}

	return Unknown
}

func (m Method) String() string {
	switch m {
	case GET:
		return "GET"
	case PUT:
		return "PUT"
	case POST:
		return "POST"
	case DELETE:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}
