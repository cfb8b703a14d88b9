// Command lstd runs Lua scripts with the lstd module preloaded.
package main

func main() {
	Execute()
}
