// Command cmin minifies C source files.
package main

import "github.com/mouse-blink/cmin/cmd"

func main() {
	cmd.Execute()
}
