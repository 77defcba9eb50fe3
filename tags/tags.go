package tags

import "github.com/yohamta/donburi"

var (
	Camera    = donburi.NewTag().SetName("Camera")
	Singleton = donburi.NewTag().SetName("Singleton")
)
