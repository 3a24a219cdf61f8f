package main

import "github.com/sysadmin/sysadmin-api/cmd"

func main() {
	cmd.Execute()
}
