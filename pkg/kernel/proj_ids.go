package kernel

type InternshipID string

func NewInternshipID(id string) InternshipID { return InternshipID(id) }
func (r InternshipID) String() string        { return string(r) }
func (r InternshipID) IsEmpty() bool         { return string(r) == "" }

type ProfileID string

// DefaultProfileID is the profile served by the single-user /api/profile routes
const DefaultProfileID ProfileID = "me"

func NewProfileID(id string) ProfileID { return ProfileID(id) }
func (r ProfileID) String() string     { return string(r) }
func (r ProfileID) IsEmpty() bool      { return string(r) == "" }
