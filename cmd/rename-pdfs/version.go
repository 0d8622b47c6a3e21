package main

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("rename-pdfs {{.Version}}\n")
}
