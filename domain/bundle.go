package domain

// Bundle is the set of credentials the messaging backend needs to activate a channel.
type Bundle struct {
	APIKey        string `yaml:"apiKey" json:"apiKey"`
	AppId         string `yaml:"appId" json:"appId"`
	SenderId      string `yaml:"senderId" json:"messagingSenderId"`
	ProjectId     string `yaml:"projectId" json:"projectId"`
	StorageBucket string `yaml:"storageBucket" json:"storageBucket"`
	AuthDomain    string `yaml:"authDomain" json:"authDomain"`
}

// Missing returns the names of empty fields
func (b Bundle) Missing() (fields []string) {
	check := func(name, value string) {
		if value == "" {
			fields = append(fields, name)
		}
	}
	check("apiKey", b.APIKey)
	check("appId", b.AppId)
	check("senderId", b.SenderId)
	check("projectId", b.ProjectId)
	check("storageBucket", b.StorageBucket)
	check("authDomain", b.AuthDomain)
	return
}
