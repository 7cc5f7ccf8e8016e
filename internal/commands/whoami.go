package commands

type Whoami struct{}

func (Whoami) Name() string {
	return "whoami"
}

func (Whoami) Description() string {
	return "Print the current user name"
}

func (Whoami) Execute(env *Env, _ []string) Output {
	return Print(env.Username)
}
