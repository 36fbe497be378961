package domain

type Host uint8

const (
	HostNative Host = iota
	HostWorker
)

func (h Host) String() string {
	switch h {
	case HostNative:
		return "native"
	case HostWorker:
		return "worker"
	default:
		return "unknown"
	}
}

// Installation is an audit record of one successful bootstrap.
type Installation struct {
	Id        string `bson:"_id"`
	Host      Host   `bson:"host"`
	AppId     string `bson:"appId"`
	ProjectId string `bson:"projectId"`
	State     string `bson:"state"`
	Created   int64  `bson:"created"`
}
