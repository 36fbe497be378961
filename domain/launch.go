package domain

// LaunchContext describes how the native process was started. A nil context is valid.
type LaunchContext struct {
	Pid  int
	Args []string
	Env  map[string]string
}

// LaunchOptions are options recorded by a previous launch. May be nil.
type LaunchOptions map[string]any
