package main

import "github.com/freekieb7/pebble/http"

// newApp builds the tutorial route table: three static JSON routes,
// registered once during setup.
func newApp() (*http.Router, error) {
	router := http.NewRouter()

	if err := router.GET("/", func(res *http.Response) error {
		res.WithJson(map[string]string{"message": "Hello from root!"})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := router.GET("/hello", func(res *http.Response) error {
		res.WithJson(map[string]string{"message": "Hello from path!"})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := router.GET("/goodbye", func(res *http.Response) error {
		res.WithJson(map[string]string{"message": "Goodbye from path!"})
		return nil
	}); err != nil {
		return nil, err
	}

	return router, nil
}
