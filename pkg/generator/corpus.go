package generator

// SubjectNames holds course titles of a computer science faculty. Repeated titles are intentional: the generator
// numbers them ("Redes I", "Redes II")
var SubjectNames = []string{
	"Administración de bases de datos", "Administración de sistemas y redes", "Adquisición y Preprocesamiento de Datos",
	"Algebra Lineal", "Ampliación de Matemáticas", "Ampliación de Redes", "Ampliación de Sistemas Operativos",
	"Ampliación de Sistemas Operativos y Redes", "Ampliación de bases de datos", "Análisis de redes sociales",
	"Análisis de sistemas concurrentes y distribuidos", "Análisis estático de programas y resolución de restricciones",
	"Análisis numérico", "Aplicaciones web", "Aprendizaje Automático", "Aprendizaje Automático", "Aprendizaje automático y Big Data",
	"Aprendizaje automático y big data", "Aprendizaje automático y minería de datos", "Arquitectura Interna de Linux y Android",
	"Arquitectura de Computadores", "Arquitectura del Nodo IoT", "Arquitecturas de Procesamiento", "Arquitecturas y Programación de Computadores Cuánticos",
	"Auditoría informática", "Auditoría informática", "Auditoría, calidad y fiabilidad informáticas", "Bases de Datos",
	"Bases de Datos Relacionales", "Bases de Datos noSQL", "Bases de Datos nosql", "Ciberseguridad en Videojuegos",
	"Cloud y Big Data", "Computación Cuántica", "Computación cuántica", "Computación de altas prestaciones y aplicaciones",
	"Creación de empresas", "Criptografía y teoría de códigos", "Cálculo", "Desarrollo de aplicaciones y servicios inteligentes",
	"Desarrollo de sistemas interactivos", "Desarrollo de videojuegos", "Desarrollo de videojuegos mediante tecnologías web",
	"Dirección y gestión de proyectos software", "Diseño automático de sistemas", "Diseño de algoritmos", "Diseño de algoritmos bioinspirados",
	"Diseño de infraestructura inteligente para el Internet de las Cosas", "Diseño de sistemas correctos por construcción",
	"Diseño de videojuegos", "Diseño y análisis de protocolos de seguridad", "E-learning", "Electrónica", "Empresa y Emprendimiento",
	"Entornos interactivos y realidad virtual", "Especificación, validación y testing", "Estadística aplicada",
	"Estructura de Computadores", "Estructura de Computadores", "Estructura de computadores", "Estructuras de Datos y Algoritmos",
	"Estructuras de datos", "Estructuras de datos y algoritmos", "Evaluación de configuraciones", "Fundamentos de Algoritmia",
	"Fundamentos de Computadores", "Fundamentos de Computadores", "Fundamentos de algoritmia", "Fundamentos de computadores",
	"Fundamentos de computadores", "Fundamentos de electricidad y electrónica", "Fundamentos de la Inteligencia Artificial",
	"Fundamentos de la Programación", "Fundamentos de la Programación", "Fundamentos de los computadores",
	"Fundamentos de los lenguajes informáticos", "Gestión de Empresas de Base Tecnológica y Sistemas Informáticos",
	"Gestión de Proyectos Software", "Gestión de la información en la web", "Gestión de proyectos software y metodologías de desarrollo",
	"Gestión empresarial", "Gestión empresarial", "Gráficos por computador", "Herramientas informáticas para los juegos de azar",
	"Informática Musical", "Informática gráfica", "Informática gráfica", "Ingeniería de Comportamientos Inteligentes",
	"Ingeniería de sistemas basados en el conocimiento", "Ingeniería del Software", "Ingeniería del Software",
	"Ingeniería del conocimiento", "Ingeniería del software", "Ingeniería del software", "Ingeniería web",
	"Inteligencia Artificial Aplicada al Control", "Inteligencia Artificial", "Inteligencia Artificial", "Inteligencia Artificial aplicada a Internet de las Cosas",
	"Inteligencia artificial para videojuegos", "Interfaces de usuario", "Introducción a la Tecnología Blockchain y Smart Contracts",
	"Investigación Operativa", "Juegos Serios", "Laboratorio de Sistemas Inteligentes sobre Internet de las Cosas",
	"Lenguajes de programación y procesadores de lenguaje", "Los escenarios científicos y tecnológicos emergentes y la defensa",
	"Lógica Matemática", "Matemática Discreta", "Matemática Discreta y Lógica Matemática", "Matemática Discreta y Lógica Matemática",
	"Matemática discreta", "Metodologías ágiles de producción", "Minería de datos y el paradigma Big Data",
	"Modelado de software", "Modelado en 2D y 3D", "Modelos de la concurrencia", "Modelos operativos de gestión",
	"Motores de videojuegos", "Métodos Estadísticos", "Métodos Estadísticos para Ingeniería de Datos", "Métodos algorítmicos en resolución de problemas",
	"Métodos algorítmicos en resolución de problemas", "Métodos algorítmicos en resolución de problemas", "Métodos formales de testing",
	"Métodos matemáticos", "Negocio digital", "Optimización", "Paralelismo y Sistemas Distribuidos", "Percepción computacional",
	"Principios de dibujo, color y composición", "Probabilidad y Estadística", "Probabilidad y Estadística",
	"Probabilidad y estadística", "Procesadores de Lenguajes", "Programación Competitiva", "Programación Concurrente",
	"Programación Declarativa", "Programación con restricciones", "Programación de GPUs y aceleradores", "Programación de aplicaciones para dispositivos móviles",
	"Programación de sistemas distribuidos", "Programación de sistemas y dispositivos", "Programación de videojuegos en lenguajes interpretados",
	"Programación declarativa", "Programación declarativa aplicada", "Programación evolutiva", "Programación paralela para móviles y multicores",
	"Proyecto de Datos", "Proyecto de Datos", "Proyectos", "Proyectos", "Proyectos", "Prácticas en empresas",
	"Redes", "Redes Neuronales y Deep Learning", "Redes de nueva generación e Internet", "Redes y Sistemas Operativos",
	"Redes y seguridad", "Redes y seguridad", "Redes y videojuegos en red", "Redes, Protocolos e Interfaces",
	"Redes, protocolos e interfaces", "Robótica", "Seguridad en redes", "Seguridad y Legalidad", "Simulación física para videojuegos",
	"Sistemas Basados en Conocimiento", "Sistemas Operativos", "Sistemas de Gestión de Empresas", "Sistemas de Gestión de Empresas",
	"Sistemas de gestión de datos y de la información", "Sistemas empotrados", "Sistemas empotrados distribuidos",
	"Sistemas inteligentes", "Sistemas web", "Software corporativo", "Sonido en videojuegos", "Tecnología de computadores",
	"Tecnología de la Programación", "Tecnología de la programación", "Tecnología de la programación", "Tecnología de la programación de videojuegos",
	"Tecnología de la programación de videojuegos", "Tecnología y Organización de Computadores", "Tecnología y organización de computadores",
	"Tecnologías multimedia e interacción", "Teoría de lenguajes de programación", "Testing de Software", "Trabajo de fin de grado",
	"Trabajo fin de máster", "Tratamiento de Datos Masivos", "Tratamiento de datos masivos", "Técnicas algorítmicas en ingeniería del software",
	"Técnicas de animación en 2D y 3D", "Técnicas de control de la gestión empresarial", "Usabilidad y análisis de juegos",
	"Verificación asistida de programas", "Videojuegos en consola", "Videojuegos para dispositivos móviles",
	"Visualización de Datos", "Álgebra Lineal", "Ética, legislación y profesión",
}

var FirstNames = []string{
	"Antonio", "Manuel", "Jose", "Francisco", "David", "Juan", "Javier", "Daniel", "Jose Antonio", "Francisco Javier",
	"Jose Luis", "Carlos", "Alejandro", "Jesus", "Jose Manuel", "Miguel", "Miguel Angel", "Pablo", "Rafael",
	"Sergio", "Angel", "Pedro", "Fernando", "Jorge", "Jose Maria", "Luis", "Alberto", "Alvaro", "Adrian", "Juan Carlos",
	"Diego", "Juan Jose", "Raul", "Ivan", "Ruben", "Juan Antonio", "Oscar", "Enrique", "Juan Manuel", "Andres",
	"Ramon", "Mario", "Santiago", "Victor", "Vicente", "Joaquin", "Eduardo", "Marcos", "Roberto", "Hugo", "Maria Carmen",
	"Maria", "Carmen", "Ana Maria", "Laura", "Maria Pilar", "Maria Dolores", "Isabel", "Maria Teresa", "Ana",
	"Josefa", "Marta", "Cristina", "Maria Angeles", "Lucia", "Maria Jose", "Maria Isabel", "Francisca", "Antonia",
	"Paula", "Sara", "Dolores", "Elena", "Maria Luisa", "Raquel", "Rosa Maria", "Manuela", "Maria Jesus", "Pilar",
	"Concepcion", "Julia", "Mercedes", "Alba", "Beatriz", "Silvia", "Nuria", "Irene", "Patricia", "Rocio",
	"Andrea", "Rosario", "Juana", "Montserrat", "Teresa", "Encarnacion", "Monica", "Alicia", "Maria Mar", "Marina",
	"Sandra",
}

var LastNames = []string{
	"Garcia", "Rodriguez", "Gonzalez", "Fernandez", "Lopez", "Martinez", "Sanchez", "Perez", "Gomez", "Martin",
	"Jimenez", "Hernandez", "Ruiz", "Diaz", "Moreno", "Muñoz", "Alvarez", "Romero", "Gutierrez", "Alonso",
	"Navarro", "Torres", "Dominguez", "Ramirez", "Ramos", "Vazquez", "Gil", "Serrano", "Morales", "Molina",
	"Suarez", "Blanco", "Castro", "Delgado", "Ortega", "Ortiz", "Marin", "Rubio", "Nuñez", "Medina", "Castillo",
	"Sanz", "Cortes", "Iglesias", "Santos", "Garrido", "Guerrero", "Lozano", "Cano", "Cruz", "Flores", "Mendez",
	"Herrera", "Prieto", "Peña", "Leon", "Marquez", "Cabrera", "Gallego", "Calvo", "Vidal", "Reyes", "Campos",
	"Vega", "Fuentes", "Carrasco", "Aguilar", "Caballero", "Diez", "Nieto", "Vargas", "Santana", "Gimenez",
	"Hidalgo", "Montero", "Pascual", "Herrero", "Lorenzo", "Santiago", "Benitez", "Duran", "Arias", "Mora",
	"Ibañez", "Rojas", "Ferrer", "Carmona", "Vicente", "Soto", "Crespo", "Roman", "Parra", "Pastor", "Velasco",
	"Rivera", "Saez", "Silva", "Bravo", "Moya", "Gallardo",
}

// LectureHalls and Labs are the default room inventory
var LectureHalls = []string{
	"Aula 1", "Aula 2", "Aula 3", "Aula 4", "Aula 5", "Aula 6", "Aula 7", "Aula 8", "Aula 9", "Aula 10", "Aula 11",
	"Aula 12", "Aula 13", "Aula 14", "Aula 15", "Aula 16", "Aula 1208", "Aula 1210", "Aula 1218", "Aula 1220",
	"Aula 1008",
}

var Labs = []string{
	"Laboratorio 1", "Laboratorio 2", "Laboratorio 3", "Laboratorio 4", "Laboratorio 5", "Laboratorio 6", "Laboratorio 7",
	"Laboratorio 8", "Laboratorio 9", "Laboratorio 10", "Laboratorio 11",
}
