// Package session models the role-gating state machine: an unauthenticated
// caller becomes a teacher after passing the admin check, or a student after
// a credential login, and returns to unauthenticated on logout or rejection.
// The machine is a pure reducer; the asynchronous verification calls live in
// the auth service, which feeds their outcomes in as events.
package session

// Role is the authenticated role of a session.
type Role string

const (
	RoleNone    Role = ""
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Session is the state carried per authenticated caller. StudentID and
// StudentName are set only for student sessions.
type Session struct {
	Role        Role   `json:"role"`
	StudentID   string `json:"student_id,omitempty"`
	StudentName string `json:"student_name,omitempty"`
}

// Event is an outcome fed into the reducer.
type Event interface{ isSessionEvent() }

// TeacherVerified: the identity passed the admin check.
type TeacherVerified struct{}

// TeacherRejected: the identity is valid but failed the admin check. The
// resulting state clears the identity to avoid a stuck half-authenticated
// state.
type TeacherRejected struct{}

// StudentAuthenticated: credentials matched a student record. Name falls
// back to the submitted username when the profile carries none.
type StudentAuthenticated struct {
	StudentID string
	Name      string
	Username  string
}

// LoginFailed: credentials were rejected; the state does not transition.
type LoginFailed struct{}

// Logout ends any authenticated session and clears the identity.
type Logout struct{}

func (TeacherVerified) isSessionEvent()      {}
func (TeacherRejected) isSessionEvent()      {}
func (StudentAuthenticated) isSessionEvent() {}
func (LoginFailed) isSessionEvent()          {}
func (Logout) isSessionEvent()               {}

// Result is the reducer output: the next state plus whether the underlying
// identity session must be cleared as a side effect.
type Result struct {
	Session       Session
	ClearIdentity bool
}

// Apply runs one transition. Login events are only meaningful from the
// unauthenticated state; applied elsewhere they leave the state unchanged.
func Apply(s Session, ev Event) Result {
	switch e := ev.(type) {
	case TeacherVerified:
		if s.Role != RoleNone {
			return Result{Session: s}
		}
		return Result{Session: Session{Role: RoleTeacher}}
	case TeacherRejected:
		if s.Role != RoleNone {
			return Result{Session: s}
		}
		return Result{Session: Session{Role: RoleNone}, ClearIdentity: true}
	case StudentAuthenticated:
		if s.Role != RoleNone {
			return Result{Session: s}
		}
		name := e.Name
		if name == "" {
			name = e.Username
		}
		return Result{Session: Session{Role: RoleStudent, StudentID: e.StudentID, StudentName: name}}
	case LoginFailed:
		return Result{Session: s}
	case Logout:
		return Result{Session: Session{Role: RoleNone}, ClearIdentity: true}
	default:
		return Result{Session: s}
	}
}
