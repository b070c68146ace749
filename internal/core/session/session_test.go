package session

import "testing"

func TestApply_TeacherVerified(t *testing.T) {
	res := Apply(Session{}, TeacherVerified{})
	if res.Session.Role != RoleTeacher {
		t.Fatalf("expected teacher role, got %q", res.Session.Role)
	}
	if res.ClearIdentity {
		t.Fatalf("verified teacher must not clear identity")
	}
}

func TestApply_TeacherRejected(t *testing.T) {
	res := Apply(Session{}, TeacherRejected{})
	if res.Session.Role != RoleNone {
		t.Fatalf("rejected teacher must end unauthenticated, got %q", res.Session.Role)
	}
	if !res.ClearIdentity {
		t.Fatalf("rejected teacher must clear the identity session")
	}
}

func TestApply_StudentAuthenticated(t *testing.T) {
	res := Apply(Session{}, StudentAuthenticated{StudentID: "s-1", Name: "Ada", Username: "ada01"})
	if res.Session.Role != RoleStudent || res.Session.StudentID != "s-1" || res.Session.StudentName != "Ada" {
		t.Fatalf("unexpected session: %+v", res.Session)
	}
}

func TestApply_StudentNameFallsBackToUsername(t *testing.T) {
	res := Apply(Session{}, StudentAuthenticated{StudentID: "s-1", Username: "ada01"})
	if res.Session.StudentName != "ada01" {
		t.Fatalf("expected username fallback, got %q", res.Session.StudentName)
	}
}

func TestApply_LoginFailed(t *testing.T) {
	res := Apply(Session{}, LoginFailed{})
	if res.Session.Role != RoleNone || res.ClearIdentity {
		t.Fatalf("failed login must leave state unchanged: %+v", res)
	}
}

func TestApply_Logout(t *testing.T) {
	for _, start := range []Session{
		{Role: RoleTeacher},
		{Role: RoleStudent, StudentID: "s-1", StudentName: "Ada"},
	} {
		res := Apply(start, Logout{})
		if res.Session.Role != RoleNone || res.Session.StudentID != "" || res.Session.StudentName != "" {
			t.Fatalf("logout from %+v left residue: %+v", start, res.Session)
		}
		if !res.ClearIdentity {
			t.Fatalf("logout must clear the identity session")
		}
	}
}

func TestApply_LoginEventsIgnoredWhenAuthenticated(t *testing.T) {
	teacher := Session{Role: RoleTeacher}
	if res := Apply(teacher, StudentAuthenticated{StudentID: "s-1"}); res.Session != teacher {
		t.Fatalf("student login over teacher session changed state: %+v", res.Session)
	}
	student := Session{Role: RoleStudent, StudentID: "s-1", StudentName: "Ada"}
	if res := Apply(student, TeacherVerified{}); res.Session != student {
		t.Fatalf("teacher login over student session changed state: %+v", res.Session)
	}
}
