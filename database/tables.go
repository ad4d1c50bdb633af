package database

var Tables []interface{} = []interface{}{
	&User{},
	&Session{},
	&Project{},
	&ProjectFile{},
	&Collaboration{},
	&AISession{},
	&AIInteraction{},
}
