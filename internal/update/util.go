package update

func levelFromError(isErr bool) string {
	if isErr {
		return "error"
	}
	return "info"
}
