package testutil

// SameErrorString reports whether err and target are both nil or carry the
// same message. Table tests use it to compare freshly built errors.
func SameErrorString(err, target error) bool {
	if err == nil || target == nil {
		return err == target
	}
	return err.Error() == target.Error()
}
