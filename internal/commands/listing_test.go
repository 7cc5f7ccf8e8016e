package commands_test

import (
	"fmt"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rwx-research/vsh/internal/commands"
	"github.com/rwx-research/vsh/internal/vfs"
)

var _ = Describe("ls", func() {
	var env *commands.Env

	BeforeEach(func() {
		env = newEnv()
	})

	It("lists the current directory by default", func() {
		commands.Cd{}.Execute(env, nil)

		out := commands.Ls{}.Execute(env, nil)
		Expect(out.String()).To(Equal("notes.txt  projects  run.sh*"))
	})

	It("shows hidden entries with -a", func() {
		dir := vfs.NewDirectory(vfs.Metadata{Name: "mixed"})
		dir.Add(vfs.NewFile(vfs.Metadata{Name: "visible"}, nil))
		dir.Add(vfs.NewFile(vfs.Metadata{Name: ".hidden"}, nil))
		env.FS.Root().Add(dir)

		Expect(commands.Ls{}.Execute(env, []string{"-a", "/mixed"}).String()).To(Equal(".hidden  visible"))
		Expect(commands.Ls{}.Execute(env, []string{"/mixed"}).String()).To(Equal("visible"))
	})

	It("groups names in rows of four", func() {
		dir, err := env.FS.CreateDirectory("/many", "")
		Expect(err).NotTo(HaveOccurred())
		for i := 1; i <= 6; i++ {
			dir.Add(vfs.NewFile(vfs.Metadata{Name: fmt.Sprintf("f%d", i)}, nil))
		}

		out := commands.Ls{}.Execute(env, []string{"/many"})
		Expect(out.String()).To(Equal("f1  f2  f3  f4\nf5  f6"))
	})

	It("marks files executable by anyone", func() {
		dir, err := env.FS.CreateDirectory("/bin", "")
		Expect(err).NotTo(HaveOccurred())
		dir.Add(vfs.NewFile(vfs.Metadata{Name: "others", Permissions: "601"}, nil))
		dir.Add(vfs.NewFile(vfs.Metadata{Name: "plain", Permissions: "666"}, nil))
		dir.Add(vfs.NewDirectory(vfs.Metadata{Name: "sub", Permissions: "777"}))

		out := commands.Ls{}.Execute(env, []string{"/bin"})
		Expect(out.String()).To(Equal("others*  plain  sub"))
	})

	It("returns empty output for empty directories", func() {
		out := commands.Ls{}.Execute(env, []string{"/empty"})
		Expect(out.HasOutput()).To(BeTrue())
		Expect(out.String()).To(Equal(""))
	})

	It("prints the name of a file target", func() {
		out := commands.Ls{}.Execute(env, []string{"/etc/hostname"})
		Expect(out.String()).To(Equal("hostname"))
	})

	It("uses the first non-flag argument as the target", func() {
		out := commands.Ls{}.Execute(env, []string{"-x", "/etc", "/empty"})
		Expect(out.String()).To(Equal("hostname"))
	})

	It("reports missing targets", func() {
		out := commands.Ls{}.Execute(env, []string{"/missing"})
		Expect(out.String()).To(Equal("ls: cannot access '/missing': No such file or directory"))
	})

	It("prints long listings", func() {
		out := commands.Ls{}.Execute(env, []string{"-la", "/home/bob"})
		Expect(strings.Split(out.String(), "\n")).To(Equal([]string{
			"-rw-r--r--  1 bob      bob            16 Mar 07 09:05 .bashrc",
			"-rw-r--r--  1 bob      staff          24 Mar 07 09:05 notes.txt",
			"drwxr-xr-x  2 bob      bob          4096 Mar 07 09:05 projects/",
			"-rwxr-xr-x  1 bob      bob            10 Mar 07 09:05 run.sh",
		}))

		Expect(commands.Ls{}.Execute(env, []string{"-al", "/home/bob"}).String()).To(Equal(out.String()))
	})

	It("combines separate -l and -a flags", func() {
		out := commands.Ls{}.Execute(env, []string{"-l", "/home/bob"})
		Expect(out.String()).NotTo(ContainSubstring(".bashrc"))

		out = commands.Ls{}.Execute(env, []string{"-l", "-a", "/home/bob"})
		Expect(out.String()).To(HavePrefix("-rw-r--r--  1 bob      bob            16 Mar 07 09:05 .bashrc"))
	})

	It("prints a long entry for a file target", func() {
		out := commands.Ls{}.Execute(env, []string{"-l", "/home/bob/run.sh"})
		Expect(out.String()).To(Equal("-rwxr-xr-x  1 bob      bob            10 Mar 07 09:05 run.sh"))
	})
})

var _ = Describe("tail", func() {
	var env *commands.Env

	BeforeEach(func() {
		env = newEnv()
		commands.Cd{}.Execute(env, nil)
	})

	It("returns the last lines in order", func() {
		out := commands.Tail{}.Execute(env, []string{"-n", "2", "notes.txt"})
		Expect(out.String()).To(Equal("four\nfive"))
	})

	It("accepts the count after the path", func() {
		out := commands.Tail{}.Execute(env, []string{"notes.txt", "-n", "1"})
		Expect(out.String()).To(Equal("five"))
	})

	It("defaults to ten lines", func() {
		_, err := env.FS.CreateFile("long.txt", []byte(strings.Repeat("x\n", 9)+"a\nb\nc\n"), "")
		Expect(err).NotTo(HaveOccurred())

		out := commands.Tail{}.Execute(env, []string{"long.txt"})
		Expect(strings.Split(out.String(), "\n")).To(HaveLen(10))
		Expect(out.String()).To(HaveSuffix("x\na\nb\nc"))
	})

	It("returns the whole file when it is shorter than the count", func() {
		out := commands.Tail{}.Execute(env, []string{"-n", "50", "notes.txt"})
		Expect(out.String()).To(Equal("one\ntwo\nthree\nfour\nfive"))
	})

	It("handles CRLF line endings", func() {
		_, err := env.FS.CreateFile("dos.txt", []byte("a\r\nb\r\nc\r\n"), "")
		Expect(err).NotTo(HaveOccurred())

		out := commands.Tail{}.Execute(env, []string{"-n", "2", "dos.txt"})
		Expect(out.String()).To(Equal("b\nc"))
	})

	It("returns empty output for a zero count", func() {
		out := commands.Tail{}.Execute(env, []string{"-n", "0", "notes.txt"})
		Expect(out.HasOutput()).To(BeTrue())
		Expect(out.String()).To(Equal(""))
	})

	It("reports a missing path", func() {
		out := commands.Tail{}.Execute(env, []string{"-n", "3"})
		Expect(out.String()).To(Equal("tail: missing file operand"))
	})

	It("reports a non-numeric count", func() {
		out := commands.Tail{}.Execute(env, []string{"-n", "many", "notes.txt"})
		Expect(out.String()).To(Equal("tail: invalid number of lines: 'many'"))
	})

	It("reports missing files", func() {
		out := commands.Tail{}.Execute(env, []string{"ghost.txt"})
		Expect(out.String()).To(Equal("tail: cannot open 'ghost.txt' for reading: No such file or directory"))
	})

	It("refuses directories", func() {
		out := commands.Tail{}.Execute(env, []string{"projects"})
		Expect(out.String()).To(Equal("tail: error reading 'projects': Is a directory"))
	})
})

var _ = Describe("tree", func() {
	var env *commands.Env

	BeforeEach(func() {
		env = newEnv()
	})

	It("reports empty directories", func() {
		out := commands.Tree{}.Execute(env, []string{"/empty"})
		Expect(out.String()).To(Equal("/empty\n\n0 directories, 0 files"))
	})

	It("draws the hierarchy", func() {
		_, err := env.FS.CreateFile("/home/bob/projects/main.go", []byte("package main\n"), "")
		Expect(err).NotTo(HaveOccurred())

		out := commands.Tree{}.Execute(env, nil)
		Expect(out.String()).To(Equal(strings.Join([]string{
			"/",
			"├── empty/",
			"├── etc/",
			"│   └── hostname",
			"└── home/",
			"    └── bob/",
			"        ├── .bashrc",
			"        ├── notes.txt",
			"        ├── projects/",
			"        │   └── main.go",
			"        └── run.sh*",
			"",
			"5 directories, 5 files",
		}, "\n")))
	})

	It("uses the given path as the header", func() {
		commands.Cd{}.Execute(env, []string{"/home"})

		out := commands.Tree{}.Execute(env, []string{"bob/projects"})
		Expect(out.String()).To(Equal("bob/projects\n\n0 directories, 0 files"))
	})

	It("reports missing paths", func() {
		out := commands.Tree{}.Execute(env, []string{"/nope"})
		Expect(out.String()).To(Equal("tree: /nope: No such file or directory"))
	})

	It("refuses files", func() {
		out := commands.Tree{}.Execute(env, []string{"/etc/hostname"})
		Expect(out.String()).To(Equal("tree: /etc/hostname: Not a directory"))
	})
})
