package version

import "fmt"

// Заполняются через -ldflags "-X github.com/vladislavdragonenkov/menuboard/internal/version.version=...".
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Info возвращает версию, коммит и дату сборки.
func Info() (v, c, d string) { return version, commit, date }

func GetVersion() string { return version }

func GetCommit() string { return commit }

func GetDate() string { return date }

func String() string {
	return fmt.Sprintf("version=%s commit=%s date=%s", version, commit, date)
}

// Banner — строка версии для вывода бинарями, например "menuctl dev (unknown, unknown)".
func Banner(app string) string {
	return fmt.Sprintf("%s %s (%s, %s)", app, version, commit, date)
}
