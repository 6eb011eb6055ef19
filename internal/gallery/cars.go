package gallery

const carCoupe = `        ______________
     __/  ||    ||    \____
    /    _||____||_        \__
   |  __/  ________ \__  __   |
   '-(  )-'        '-(  )-'---'
      ''              ''`

const carTarga = `          ____________
       __/ |  |  |     \___
  ____/____|__|__|_________\_
 |    _                  _   |
 '--( o )--------------( o )-'
     '-'                '-'`

const carSpyder = `                  __
     ____________/  \____
  __/     ___            \__
 |  ___  /   \      ___     |
 '-( o )-------------( o )--'
    '-'               '-'`

const carSUV = `       ___________________
      /  |     |     |    \
  ___/___|_____|_____|_____\___
 |   __                  __    |
 '--(  )----------------(  )---'
     ''                  ''`

// Cars returns the four car pictures in display order.
func Cars() []Image {
	return []Image{
		{Name: "coupe", Caption: "911 Carrera", Art: carCoupe},
		{Name: "targa", Caption: "911 Targa", Art: carTarga},
		{Name: "spyder", Caption: "918 Spyder", Art: carSpyder},
		{Name: "suv", Caption: "Cayenne", Art: carSUV},
	}
}
