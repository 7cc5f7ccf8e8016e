package commands

type Pwd struct{}

func (Pwd) Name() string {
	return "pwd"
}

func (Pwd) Description() string {
	return "Print the current directory"
}

func (Pwd) Execute(env *Env, _ []string) Output {
	return Print(env.FS.CurrentDirectory())
}
