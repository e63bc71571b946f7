package main

import "github.com/oshokin/colorful-version/cmd/colorful-version-demo/cmd"

func main() {
	cmd.Execute()
}
