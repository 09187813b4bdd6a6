package main

func main() {
	// console flags
	InitFlag()
	// signal handling for a clean abort
	InitSafeExit()
	// configuration
	InitConf(configPath)
	// logging
	InitLog()
	// fetch and render
	InitTask()
}
