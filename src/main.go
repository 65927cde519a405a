package main

import (
	_ "github.com/smartchessacademy/website/src/admintools"
	_ "github.com/smartchessacademy/website/src/migration"
	"github.com/smartchessacademy/website/src/website"
)

func main() {
	website.WebsiteCommand.Execute()
}
