package main

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("keep-page {{.Version}}\n")
}
