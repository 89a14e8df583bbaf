package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	imgcryptVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())
	b.Test().Does(Go().TestAll())
	b.Benchmark().Does(Go().BenchmarkAll())

	imgcrypt := NewAppBuild("imgcrypt", "cmd/imgcrypt", imgcryptVersion)
	imgcrypt.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", imgcryptVersion).
			CgoEnabled(false)
	})
	imgcrypt.Variant("windows", "amd64")
	imgcrypt.Variant("linux", "amd64")
	imgcrypt.Variant("linux", "arm64")
	imgcrypt.Variant("darwin", "amd64")
	imgcrypt.Variant("darwin", "arm64")
	b.ImportApp(imgcrypt)

	b.Execute()
}
