package main

import "tidydesk/cmd/tidydesk-cli/cmd"

func main() {
	cmd.Execute()
}
