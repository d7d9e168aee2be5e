// Package environment names the deployment environments and normalises the
// aliases accepted in configuration ("prod", "stage").
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsProduction() {
//	    // ...
//	}
package environment
