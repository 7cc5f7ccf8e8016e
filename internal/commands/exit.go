package commands

type Exit struct{}

func (Exit) Name() string {
	return "exit"
}

func (Exit) Description() string {
	return "Exit the emulator"
}

// Execute only clears the running flag; the host loop decides when to stop.
func (Exit) Execute(env *Env, _ []string) Output {
	env.Running = false
	return Print("Exiting emulator...")
}
